// Package driving defines the driving ports (primary interfaces) exposed by
// the MedLink client core to its CLI and TUI adapters: session lifecycle,
// access guarding, the patient directory cache, per-patient record and chat
// caches, and the community forum.
package driving
