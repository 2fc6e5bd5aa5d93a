// Package workspace implements the `workspace` declaration type.
//
// A workspace block looks like:
//
//	workspace('app'):
//	  description: An example description here
//	  harness: magento2
//	  overlay: base
//
// The package registers its Factory with pkg/registry on import.
package workspace
