package usecase

// GlobalRandomForTest exposes the default random source
type GlobalRandomForTest = globalRandom
