// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sender demonstrates how the four call conventions interact with an
// exclusively owned buffer. Each Send variant encodes one convention in its
// parameter type, so the acceptance rules hold at compile time wherever the
// type system can carry them:
//
//   - Send takes an [ownbuf.View]; both persistent buffers and moved tokens bind.
//   - SendMutable takes a *[ownbuf.Buffer]; a moved token does not bind.
//   - SendOwned and SendTransfer take an [ownbuf.Owned]; a persistent buffer
//     does not bind without an explicit Move at the call site.
package sender
