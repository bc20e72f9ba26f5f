// Package config loads the circulation settings and builds the database connections and logger from them.
//
// Every setting is resolved with the precedence command-line flag, then environment variable, then default.
package config
