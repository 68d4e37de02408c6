// Package config loads vrange.json.
//
// # Configuration File Structure
//
//	{
//	  "inspect": {
//	    "addr": "localhost:7070",
//	    "metricsPath": "/metrics",
//	    "streamBuffer": 64
//	  },
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  },
//	  "render": {
//	    "maxDepth": 256
//	  },
//	  "snapshot": {
//	    "bucket": "ui-snapshots",
//	    "prefix": "dev/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// VRANGE_ADDR and VRANGE_LOG_LEVEL override the file.
package config
