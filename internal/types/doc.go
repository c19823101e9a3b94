/*
Package types defines the core data structures shared by the cloudide packages.

# Catalog Types

Node:
  - One catalog entry, either a file (document) or a folder (group)
  - Folders own an ordered list of child nodes in Items
  - Built with File and Folder, or decoded from a YAML/JSON catalog

Document:
  - A single editable text unit
  - Language is display-only and drives the tab and status bar icons
  - Content is the original text; edits never modify it

# Workspace Types

TabEntry:
  - Marks a document as open in the tab strip
  - Title and Language are copied from the document at open time

# Field Tags

All types use JSON and YAML tags so a catalog file can be written in
either format:

	{
	  "type": "folder",
	  "id": "src",
	  "name": "src",
	  "items": [
	    {"type": "file", "id": "main", "name": "main.go", "language": "go"}
	  ]
	}
*/
package types
