// Package repositories persists tracked entities in a key-value store.
//
// Every collection lives under one fixed key as a JSON blob and is replaced
// wholesale on save. Three [KVStore] backends are provided:
//   - [SQLiteStore] : a kv_store table in a local SQLite file
//   - [BadgerStore] : an embedded Badger directory
//   - [MemoryStore] : process memory, for tests and throwaway sessions
//
// Typed repositories sit on top of a KVStore:
//   - [RepertoireRepository] : repertoire items
//   - [AuditionRepository] : auditions with checklists and journals
//   - [PracticeRepository] : the append-only practice log
//   - [FavoritesRepository] : favourite show ids
//   - [SettingsRepository] : the user settings singleton
package repositories
