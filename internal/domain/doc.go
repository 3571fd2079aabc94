// Package domain contains the core entity types of the study assistant and
// their validation rules.
//
// Entities are plain structs with JSON tags; they carry no persistence or
// transport concerns. Constructors validate their inputs and stamp creation
// times from a caller-supplied clock so that every timestamp in the system
// flows from a single injectable time source.
package domain
