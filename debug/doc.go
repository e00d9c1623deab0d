// Package debug gates diagnostic logging on environment variables read
// once at startup:
//
//	KYAML_DEBUG_PARSE    parser dispatch on each structural line
//	KYAML_DEBUG_TOKENS   line classification
//	KYAML_DEBUG_RESOLVE  typed value of each leaf resolved at parse time
//
// Any value accepted by strconv.ParseBool enables a flag. Logf writes to
// standard error and prints *ir.Node arguments in dump text form.
package debug
