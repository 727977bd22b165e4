// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package ownbuf implements an exclusively owned, transferable, non-duplicable
// byte buffer. At most one live Buffer references a given memory region;
// ownership moves between holders through the Owned token and is never shared
// or duplicated.
//
// Duplication is rejected in layers: consuming APIs take the distinct Owned
// type, so handing a live *Buffer where ownership is required does not
// type-check; the Buffer struct carries a noCopy field that go vet flags on
// struct copies; and any read through an emptied buffer or a spent token
// fails with ErrUseAfterMove at runtime.
package ownbuf
