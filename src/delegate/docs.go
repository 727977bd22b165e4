// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package delegate provides a stored callable whose captured state is held by
// exclusive ownership. It exists because an ordinary boxed closure only
// references its captures; deferring work on a move-only payload needs the
// box itself to own the payload.
package delegate
