// Package repo contains storage adapters implementing the ports defined in
// src/core/ports.
//
// Two adapters live here:
//   - MemoryBoardRepository: the in-memory home of the four content
//     collections, seeded once at startup from the compiled-in dataset
//   - PostgresProfileStore: the remote profile record, one upserted row per
//     user id
//
// The device-local profile store lives in src/infra/store since it wraps a
// generic key-value file rather than a relational schema.
package repo
