// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransports is returned when neither an HTTP nor a gRPC handler was
// built, i.e. the gateway has nothing to listen on.
var errNoTransports = errors.New("no gateway transport is configured")
