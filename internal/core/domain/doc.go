// Package domain contains the core business entities for the MedLink client:
// sessions, patients, medical records, chat transcripts, and community posts.
// It has no dependencies on adapters or infrastructure.
package domain
