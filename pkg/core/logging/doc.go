// Package logging builds loggers for the lanpy command line tools from
// string settings, typically the [log] section of a grammar file.
package logging
