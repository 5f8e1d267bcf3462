// Package removal runs the per-item state machine that moves selected entries
// into the trash.
//
// Each entry is handled in input order:
//
//	start      next timestamp id, planned trash path
//	guards     root (fail), privileged or cross-device (permanent-delete confirm)
//	dedup      identical copy already trashed: permanent delete
//	move       rename into the trash, append a history record
//	fallback   permission denied fails the item; other rename errors
//	           ask to delete permanently
//
// Empty-directory mode replaces the whole pipeline with a non-recursive
// directory removal. Force mode removes entries permanently without
// touching the trash or the history.
package removal
