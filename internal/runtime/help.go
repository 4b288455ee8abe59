package runtime

const helpText = `seed - a small tree-walking scripting language

USAGE:
    seed [OPTIONS] [FILE [ARGS...]]
    seed -c EXPRESSION
    seed --check FILE
    seed --version
    seed --help

MODES:
    (default)           Start interactive REPL
    FILE [ARGS...]      Execute script file
    -c EXPRESSION       Evaluate expression and print result
    --check FILE        Check syntax without executing

OPTIONS:
    --trace                Trace calls/returns to stderr
    --trace-file PATH      Trace calls/returns to a rotating log file
    --quiet                Suppress non-error output
    --no-print             Don't print the result of -c

REPL OPTIONS:
    --no-history           Disable command history
    --history-file PATH    History file location (default: ~/.seed_history)
    --prompt STRING        Custom REPL prompt
    --no-welcome           Skip the welcome message

    --version              Show version information
    --help                 Show this help message

EXIT CODES:
    0     Success
    1     Runtime error
    2     Syntax error
    64    Usage error (invalid CLI arguments)
    70    Internal error
`

func helpString() string {
	return helpText
}
