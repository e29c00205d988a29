// Package repositories implements SQLite persistence for client-local state.
//
// Two stores back the browser:
//   - [KVRepository] : a key/value string table holding the favorites set
//     (and any future client-local flags) under fixed keys
//   - [HymnCacheRepository] : a snapshot of the remote hymn collection for
//     offline listing, replaced wholesale on each sync
//
// Schema lives in embedded migrations applied by shared.RunMigrations.
package repositories
