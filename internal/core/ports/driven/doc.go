// Package driven defines the driven ports (secondary adapters' interfaces)
// for the MedLink client core: the REST gateway, persisted session and
// transcript storage, configuration, credential acquisition, and the wallet
// doctor registry. Core services depend only on these interfaces; concrete
// implementations live under internal/adapters/driven.
package driven
