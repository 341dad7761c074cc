package buildinfo

// NewProviderWithReader exposes the injectable constructor to tests.
var NewProviderWithReader = newProvider
