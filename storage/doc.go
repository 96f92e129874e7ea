// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk ledger store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. 0x00         = key separator for composite keys
//                   (identifiers are addresses and ids that never contain NUL)
// 4. seconds      = block timestamp as big endian uint64 (8 bytes)
// 5. records      = JSON encoded record structs
//
// Credentials:
//
//   C ++ hash                  - verifiable credential
//   N ++ token id              - credential NFT
//   S ++ DID                   - school node registration
//
// Identity:
//
//   D ++ DID                   - DID document (JSON)
//   H ++ DID                   - SHA3-256 digest of the document JSON
//
// Admission:
//
//   A ++ seat id               - seat
//   W ++ subject id            - candidate score
//   R ++ subject id            - admission result (rewritten by each matching run)
//
// Research:
//
//   F ++ hash                  - research hash record
//   B ++ claim id              - plagiarism bounty claim
//
// Market:
//
//   M ++ course id             - course NFT
//   G ++ certificate id        - course completion certificate
//   U ++ degree id             - degree
//   Q ++ degree type           - degree requirements
//   P ++ student ++ 0x00 ++ course id
//                              - course progression
//
// Payment:
//
//   E ++ escrow id             - tuition escrow
//
// Audit:
//
//   X ++ seconds ++ 0x00 ++ actor
//                              - transaction audit entry, append only
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
