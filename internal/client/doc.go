// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the mail sync client runtime.
//
// It wires the sync services, the realtime push transport, and the fallback
// polling worker into a single headless process lifecycle.
package client
