package readme

import "strings"

// LicensePreset pairs a display name with the corresponding license text
// dropped into the License field when selected or matched.
type LicensePreset struct {
	Name string `json:"name"`
	Text string `json:"value"`
}

const otherLicenseName = "Other (Specify in README)"

// LicensePresets is the fixed list offered by the license select control,
// in display order.
var LicensePresets = []LicensePreset{
	{Name: "MIT License", Text: mitText},
	{Name: "Apache License 2.0", Text: apacheText},
	{Name: "GNU GPLv3", Text: gplText},
	{Name: "BSD 3-Clause License", Text: bsdText},
	{Name: "Mozilla Public License 2.0", Text: mplText},
	{Name: "The Unlicense", Text: unlicenseText},
	{Name: otherLicenseName, Text: ""},
}

// DefaultLicenseText is the license a fresh record starts with.
func DefaultLicenseText() string { return mitText }

// MatchLicensePreset maps a host-reported license name (for example
// "MIT License" or "Apache License 2.0") onto a preset and returns its
// text. The match is best-effort: case-insensitive containment either way,
// or the preset's leading word as a prefix of the reported name. The
// "Other" preset never matches.
func MatchLicensePreset(reported string) (string, bool) {
	reported = strings.ToLower(strings.TrimSpace(reported))
	if reported == "" {
		return "", false
	}
	for _, p := range LicensePresets {
		if p.Name == otherLicenseName {
			continue
		}
		name := strings.ToLower(p.Name)
		if strings.Contains(name, reported) || strings.Contains(reported, name) {
			return p.Text, true
		}
		if first, _, ok := strings.Cut(name, " "); ok && strings.HasPrefix(reported, first) {
			return p.Text, true
		}
	}
	return "", false
}

const mitText = `MIT License

Copyright (c) [year] [fullname]

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.`

const apacheText = `Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`

const gplText = `This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <https://www.gnu.org/licenses/>.`

const bsdText = `Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its contributors
   may be used to endorse or promote products derived from this software
   without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES ARE DISCLAIMED.`

const mplText = `This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at https://mozilla.org/MPL/2.0/.`

const unlicenseText = `This is free and unencumbered software released into the public domain.

Anyone is free to copy, modify, publish, use, compile, sell, or
distribute this software, either in source code form or as a compiled
binary, for any purpose, commercial or non-commercial, and by any
means.

For more information, please refer to <https://unlicense.org>`
