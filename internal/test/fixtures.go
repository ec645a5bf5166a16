// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package test

// Transaction fixtures shared by package tests

// ConwayTxHex is a simple preview network Conway transaction with one input,
// two outputs and a single vkey witness
const ConwayTxHex = "84a500d9010281825820279184037d249e397d97293738370756da559718fcdefae9924834840046b37b01018282583900923d4b64e1d730a4baf3e6dc433a9686983940f458363f37aad7a1a9568b72f85522e4a17d44a45cd021b9741b55d7cbc635c911625b015e1a00a9867082583900923d4b64e1d730a4baf3e6dc433a9686983940f458363f37aad7a1a9568b72f85522e4a17d44a45cd021b9741b55d7cbc635c911625b015e1b00000001267d7b04021a0002938d031a04e304e70800a100d9010281825820b829480e5d5827d2e1bd7c89176a5ca125c30812e54be7dbdf5c47c835a17f3d5840b13a76e7f2b19cde216fcad55ceeeb489ebab3dcf63ef1539ac4f535dece00411ee55c9b8188ef04b4aa3c72586e4a0ec9b89949367d7270fdddad3b18731403f5f6"

const ConwayTxHash = "22fbebfedc02277dd550cc774c483cb842728d090ffeba8ae2168805f651fc4c"

// RichTxHex is a synthetic mainnet transaction that exercises most body keys:
// three inputs (two sharing a transaction), map and legacy outputs with
// ordered multi-assets, an inline datum, a reference script, six certificates,
// a withdrawal, mint and burn, collateral, reference inputs, Conway map
// redeemers and tag 259 auxiliary data
const RichTxHex = "84b000d9010283825820aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa00825820aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa01825820bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb020183a400583901010101010101010101010101010101010101010101010101010101010202020202020202020202020202020202020202020202020202020201821a001e8480a2581cb2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2b2a144746f6b4205581ca1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a24007445553444303028201d81848d87983014201028003d818448203410083581d61030303030303030303030303030303030303030303030303030303031a0016e3605820d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1a300581d7104040404040404040404040404040404040404040404040404040404011a002dc6c00282005820d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2021a00030d40031903e8048682008200581c0202020202020202020202020202020202020202020202020202020283028200581c02020202020202020202020202020202020202020202020202020202581c0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a8304581c0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a19014083098200581c02020202020202020202020202020202020202020202020202020202810284108200581c050505050505050505050505050505050505050505050505050505051a1dcd650082781d68747470733a2f2f6578616d706c652e6f72672f647265702e6a736f6e5820eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee83078201581c060606060606060606060606060606060606060606060606060606061a001e848005a1581de10202020202020202020202020202020202020202020202020202020219303907582070707070707070707070707070707070707070707070707070707070707070700819038409a1581cc3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3a2434141410a43424242210b58200b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0d81825820cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc000e81581c0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0e0f0110a200581d6103030303030303030303030303030303030303030303030303030303011a003d0900111a000493e01281825820dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd03a200d9010281825820a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a7a758400000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000005a282000082d87981182a821903e81907d082010082d87a8082190bb8190fa0f5d90103a100a11902a2a1636d7367816568656c6c6f"

const RichTxHash = "600daecba975871b2a08fe34503b9ddde2091ffbc9af9c59391239dedc322e6d"

// Addresses used by RichTxHex
const (
	RichBaseAddress       = "addr1qyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgzqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpq2u0p5n"
	RichEnterpriseAddress = "addr1vypsxqcrqvpsxqcrqvpsxqcrqvpsxqcrqvpsxqcrqvpsxqc9rrquz"
	RichScriptAddress     = "addr1wyzqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqnqqd55"
	RichStakeAddress      = "stake1uypqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqszqgpqyqsfupvxs"
	RichPoolId            = "pool1pg9q5zs2pg9q5zs2pg9q5zs2pg9q5zs2pg9q5zs2pg9q5lc4t0t"
	RichInlineDatumHex    = "d879830142010280"
)

// MaryTxHex is a synthetic three element (pre-Alonzo layout) transaction
// with a legacy array redeemer list and no auxiliary data
const MaryTxHex = "83a30081825820aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa00018182581d6103030303030303030303030303030303030303030303030303030303821a000f4240a1581ca1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1417801021a00029810a10581840000d87980820a14f6"

const MaryTxHash = "e51195b8af2ff586f1cc04135db8c6b404e7194b4b4995bf98989fa2b6374d71"

const (
	ConwayTxAddress = "addr_test1qzfr6jmyu8tnpf9670ndcse6j6rfsw2q73vrv0eh4tt6r22k3de0s4fzujsh639ytngzrwt5rd2a0j7xxhy3zcjmq90qdn3muv"
	// Hash of the single vkey witness, which is also the payment key hash
	// of ConwayTxAddress
	ConwayTxWitnessKeyHash = "923d4b64e1d730a4baf3e6dc433a9686983940f458363f37aad7a1a9"
)
