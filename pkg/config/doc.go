// Package config loads server collection files for gsq.
//
// A collection lists the game servers to query, one descriptor per
// entry:
//
//	version: "1.0"
//	name: community servers
//	servers:
//	  - type: source
//	    host: 203.0.113.4:27015
//	  - type: valheim
//	    host: play.example.com:2456
//	    id: weekend-server
//	    options:
//	      query_port: 2457
//
// Files are JSON or YAML; the format is detected from the file
// extension (.yaml/.yml for YAML, anything else JSON). Loading only
// checks structure; address resolution and protocol lookup happen
// when the entries are turned into endpoints.
package config
