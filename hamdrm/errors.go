/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the sentinel errors the top-level encoder and
  decoder can return directly (component packages' own errors, such as
  frame.ErrCrcMismatch on a single segment, are handled internally and
  do not abort the surrounding decode).

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package hamdrm

import "github.com/pkg/errors"

// ErrNoFrames is returned by Decode when fewer samples are available
// than one full transmission frame after synchronisation.
var ErrNoFrames = errors.New("hamdrm: not enough samples for one transmission frame")
