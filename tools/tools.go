// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

// This file exists just so `go mod tidy` won't remove
// tool modules from our go.mod.
//
// Run `go generate -tags tools ./tools` to add the license header to new
// source files.
package tools

//go:generate go run github.com/google/addlicense -f license_header.txt -ignore "../_examples/**" ..

import (
	_ "github.com/google/addlicense"
)
