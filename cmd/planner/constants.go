package main

// Exit codes
const (
	CLIExitSuccess = 0
	CLIExitError   = 1
)

// Flag names
const (
	FlagCatalog      = "catalog"
	FlagLogLevel     = "log-level"
	FlagJSON         = "json"
	FlagWorkers      = "workers"
	FlagAmount       = "amount"
	FlagUnit         = "unit"
	FlagTool         = "tool"
	FlagMachineTools = "machine-tools"
	FlagEyeglasses   = "eyeglasses"
	FlagOverride     = "override"
)

// Defaults
const (
	DefaultCatalogPath = "configs/catalog.yaml"
	DefaultLogLevel    = "warn"
	DefaultCacheSize   = 64
	DefaultTolerance   = 1e-10
)

// Error messages
const (
	ErrMsgTargetRequired  = "exactly one of --workers or --amount is required"
	ErrMsgBadOverrideFmt  = "invalid override %q, expected item=creator"
	ErrMsgLoadCatalogFmt  = "load catalog: %w"
	ErrMsgEncodeOutputFmt = "encode output: %w"
	ErrMsgRenderOutputFmt = "render output: %w"
	ErrMsgParseToolFmt    = "--tool: %w"
)

// Table headers
const (
	HeaderItem    = "item"
	HeaderAmount  = "amount"
	HeaderCreator = "creator"
	HeaderWorkers = "workers"
	HeaderToolset = "toolset"
	HeaderRate    = "rate"
	HeaderStatus  = "status"
	StatusOptimal = "optimal"
	StatusUsable  = "usable"
	TotalRowLabel = "total"
)

// ByproductLabel stands in for the creator of items made only as byproducts
const ByproductLabel = "(byproduct)"
