/*
 * Copyright 2023 Gofirm Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gofirm

import (
	"github.com/gofirm/gofirm/sparc"
)

// UnsupportedError reports a well-formed source construct the SPARC
// backend does not implement. The graph is fine, the backend just cannot
// express the construct yet.
type UnsupportedError = sparc.UnsupportedError

// IsUnsupported reports whether err was caused by a source construct
// the backend does not implement.
func IsUnsupported(err error) bool {
	_, ok := err.(UnsupportedError)
	return ok
}
