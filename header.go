package palgen

import "fmt"

// mitLicense is the MIT permission notice, one comment line per line.
const mitLicense = `Permission is hereby granted, free of charge, to any person obtaining a copy
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

// MITHeader builds an MIT license header for a project.
//
//	MITHeader("sciplot - a modern C++ scientific plotting library", "https://github.com/sciplot/sciplot", "2018-2021 Allan Leal")
func MITHeader(title, url, copyright string) string {
	return fmt.Sprintf("%s\n%s\n\nLicensed under the MIT License <http://opensource.org/licenses/MIT>.\n\nCopyright (c) %s\n\n%s",
		title, url, copyright, mitLicense)
}
