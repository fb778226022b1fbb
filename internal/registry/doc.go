// Package registry builds, validates and publishes the component manifest,
// registry.json.
//
// The manifest lists every component of the catalog with its tags, files
// and the components it depends on, including the internal building blocks
// (the DOM model, the owner protocol, the state cell) that public
// components pull in:
//
//	{
//	  "manifestVersion": 1,
//	  "name": "elements",
//	  "version": "0.3.0",
//	  "registry": "https://elements.vango.dev/registry.json",
//	  "components": {
//	    "tabs": {
//	      "description": "A set of layered sections of content...",
//	      "tags": ["ui-tabs", "ui-tabs-list", "ui-tabs-trigger", "ui-tabs-content"],
//	      "files": ["pkg/components/tabs/tabs.go", "..."],
//	      "dependsOn": ["element", "owner", "selection", "roving"]
//	    },
//	    "owner": {"files": ["pkg/owner/owner.go", "..."], "dependsOn": ["dom"], "internal": true}
//	  }
//	}
//
// Resolve returns a component together with its dependencies in install
// order. Publisher uploads the manifest to S3.
package registry
