// SPDX-License-Identifier: MIT

package api

// WriteJSON exposes writeJSON to api_test.
var WriteJSON = writeJSON
