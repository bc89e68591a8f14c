// Package artifacts copies Steam client files into an output directory for
// offline inspection.
//
// [Extractor.Extract] produces this layout:
//
//	<out>/
//	    htmlcache.zip      embedded browser cache
//	    logs.zip           client logs
//	    files/
//	        loginusers.vdf
//	        localconfig.vdf
//	        remoteclients.vdf
//	    manifest.json      what was collected, with SHA-256 digests
//
// A step that fails is recorded in the [Manifest] and the remaining steps
// still run. Copies keep the source file's mode and modification time.
package artifacts
