/*
Copyright © 2026 the Siteplan authors.
This file is part of Siteplan.

Siteplan is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Siteplan is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Siteplan.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command siteplan is a command-line interface for terrain
// buildability and lot-yield analysis.
package main

import (
	"fmt"
	"os"

	"github.com/sitemodel/siteplan/siteplanutil"
)

func main() {
	if err := siteplanutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
