// Package profile loads named sets of default arguments from HCL files.
//
// A profile file looks like:
//
//	profile "android" {
//	  line = "-scenes Assets/Scenes/Main.unity"
//	  arguments = {
//	    buildTarget = "android"
//	    buildPath   = "Builds/Android"
//	    development = true
//	  }
//	}
//
// Each profile becomes an *args.Args: line is parsed first, then every
// attribute of arguments is added on top of it. Strings and numbers become
// the value text, true becomes a bare flag, false and null are left out, and
// lists are joined with single spaces.
package profile
