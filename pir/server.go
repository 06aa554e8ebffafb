package pir

import "github.com/Pro7ech/ringpir/rlwe"

// Server holds the preprocessed database and the switching keys a client
// has handed it; both are read-only after construction (spec §3
// lifecycle: "switching keys are read-only... database buffers are
// created once per preprocessing and re-read by every query"). Server
// carries no secret.
type Server struct {
	ps      *ParameterSet
	keys    *rlwe.AutoKeyBSGSRNS
	db      *DatabaseBuffer
	threads int
}

// NewServer binds a parameter set, the client's BSGS switching keys and a
// thread-count knob (spec §5: "a thread-count knob (default 16) is read
// once at startup"). The database is not yet attached; call Setup.
func NewServer(ps *ParameterSet, keys *rlwe.AutoKeyBSGSRNS, threads int) *Server {
	if threads <= 0 {
		threads = 16
	}
	if err := keys.Validate(ps.N1, ps.N2); err != nil {
		panic(err)
	}
	return &Server{ps: ps, keys: keys, threads: threads}
}

// Setup is the offline phase (component I): preprocess ps.R stacked
// ord x ord plaintext matrices once. Kept strictly separate from Answer
// so its cost is amortized across every query against this database,
// mirroring the teacher example's elapsedCKGCloud/elapsedRequestCloud
// split.
func (srv *Server) Setup(blocks [][][]uint64) Stats {
	var db *DatabaseBuffer
	stat := Track("setup", func() {
		db = PreprocessDatabase(srv.ps, blocks)
	})
	srv.db = db
	return stat
}

// Answer is the online phase: runs the BSGS core (J) against every
// preprocessed block, then modulus-switches (M) each result down to
// ps.CrtRing. Returns one ciphertext per block, still in NTT (slot) form;
// a caller that additionally wants them packed into one response calls
// PackRLWEs separately (see DESIGN.md for why packing is not fused in
// here).
func (srv *Server) Answer(query *rlwe.Ciphertext) ([]*rlwe.Ciphertext, Stats) {
	var out []*rlwe.Ciphertext
	stat := Track("answer", func() {
		raw := MatrixVectorMulBSGSRNSCRTLarge(query, srv.db, srv.keys, srv.threads)
		out = make([]*rlwe.Ciphertext, len(raw))
		for i, ct := range raw {
			out[i] = ModulusSwitch(ct, srv.ps)
		}
	})
	return out, stat
}
