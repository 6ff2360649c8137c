// Package netrobust measures how plant–pollinator networks degrade when their
// best-connected pollinators disappear first.
//
// 🚀 What does it compute?
//
//	Given an interaction matrix (rows = plants, columns = pollinators), the
//	most-connected pollinator is removed repeatedly; after each removal the
//	fraction of plants that still have a visitor is recorded. The resulting
//	sequence is the robustness curve, and its mean height is the robustness
//	score R ∈ [0,1].
//
// ✨ Layout
//
//	core/       — thread-safe Graph, Vertex, Edge with a bipartite mode
//	matrix/     — dense matrices and graph ↔ biadjacency conversion
//	bipartite/  — matrix + labels → two-class graph, cell coercion, random networks
//	robustness/ — targeted attack, Curve, Score and Area
//	sheet/      — xlsx/csv sources and result writers
//	chart/      — curve rendering (png, svg, pdf)
//	pipeline/   — concurrent multi-table runs, export and plotting
//	config/     — YAML settings with validation
//	cli/        — the netrobust command (run, sheets, simulate)
//
// Quick ASCII example:
//
//	P1 ─┬─ X     remove X (degree 2): P2 loses its only visitor → y = 0.5
//	    └─ Y     remove Y (degree 1): P1 is cut off too        → y = 0.0
//	P2 ─── X
//
//	R = (0.5 + 0.0) / 2 = 0.25
//
//	go install github.com/katalvlaran/netrobust/cmd/netrobust@latest
package netrobust
