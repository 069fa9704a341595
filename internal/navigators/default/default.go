// Package _default registers the default navigators that can be included in any
// front-end for mouseGo.
//
// Currently, it includes the Adachi method ("adachi") and the left-hand wall follower ("lefthand").
package _default

import (
	_ "github.com/janpfeifer/mouseGo/internal/navigators/adachi"
	_ "github.com/janpfeifer/mouseGo/internal/navigators/lefthand"
)
