package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark     = "v1.0.0"
	Seq_Generator = "v3.0.0" // label injection, scripted sources
	Seq_Stats     = "v1.0.0"
	FASTA_Writer  = "v1.0.0"
	Seq_Plot      = "v0.1.0"
	Session       = "v1.0.0"
)
