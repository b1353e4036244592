// Package fzfconfig loads named finder profiles from a YAML file.
//
// A profile bundles the fzf options an application wants to reuse across
// invocations, so finder behavior can live in version-controlled config
// instead of code:
//
//	profiles:
//	  files:
//	    multi: true
//	    prompt: "files> "
//	    preview: "head -50 {}"
//	  branches:
//	    prompt: "branch> "
//	    layout: reverse
//
// Profiles convert directly into fzf client options:
//
//	profiles, _ := fzfconfig.Load("finders.yaml")
//	client := fzf.NewFzfCLI(profiles["files"].Options()...)
package fzfconfig
