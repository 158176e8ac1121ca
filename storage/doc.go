// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Rankmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the daemon's persistent pools
//
// A single LevelDB database split into logical pools by a one byte
// key prefix:
//
//   I → identities     identifier → packed identity record
//   O → owners         owner address → identifier
//   W → wealth         identifier → wealth value (rank index journal)
//   B → balances       owner address → host balance (oracle backing)
//   P → payouts        sequence → packed payout record (settlement journal)
//
// The database carries a version stamp; there is no migration story
// beyond refusing to open a newer version.
package storage
