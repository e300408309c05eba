// SPDX-License-Identifier: MIT

// Package stream adds helpers over iter.Seq.
package stream
