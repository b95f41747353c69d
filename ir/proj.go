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

package ir

/* result slots of multi-value nodes, used as the Proj field of OpProj */

const (
    ProjLoadM   int64 = 0
    ProjLoadRes int64 = 1
)

const (
    ProjStoreM int64 = 0
)

const (
    ProjDivM   int64 = 0
    ProjDivRes int64 = 1
)

const (
    ProjAddSPSP  int64 = 0
    ProjAddSPRes int64 = 1
    ProjAddSPM   int64 = 2
)

const (
    ProjSubSPSP int64 = 0
    ProjSubSPM  int64 = 1
)

const (
    ProjCondFalse int64 = 0
    ProjCondTrue  int64 = 1
)

const (
    ProjCallM   int64 = 0
    ProjCallRes int64 = 1
)

const (
    ProjStartM    int64 = 0
    ProjStartSP   int64 = 1
    ProjStartArgs int64 = 2
)
