package backend

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"

	"github.com/alan-christopher/simon/go/generated/simonpb"
	"github.com/alan-christopher/simon/go/simon/bitvec"
	"github.com/alan-christopher/simon/go/simon/oracle"
)

// A Remote samples by delegating to a backend on the far side of an
// io.ReadWriter. Frames are trivial: proto-length | proto. Transport and
// far-side failures surface as ordinary errors, distinct from the typed
// recovery failures, so callers can tell "no samples available" from
// "samples available but insufficient".
type Remote struct {
	rw io.ReadWriter
}

// NewRemote returns a Remote backed by rw.
func NewRemote(rw io.ReadWriter) *Remote {
	return &Remote{rw: rw}
}

// Sample implements the Sampler interface.
func (r *Remote) Sample(o *oracle.Oracle, shots int) ([]bitvec.Dense, error) {
	req := &simonpb.SampleRequest{
		Oracle: o.ToProto(),
		Shots:  int32(shots),
	}
	if err := writeFrame(r.rw, req); err != nil {
		return nil, fmt.Errorf("sending sample request: %w", err)
	}
	batch := new(simonpb.SampleBatch)
	if err := readFrame(r.rw, batch); err != nil {
		return nil, fmt.Errorf("receiving sample batch: %w", err)
	}
	if batch.GetError() != "" {
		return nil, fmt.Errorf("remote backend: %s", batch.GetError())
	}
	samples := make([]bitvec.Dense, 0, len(batch.GetSamples()))
	for _, pb := range batch.GetSamples() {
		samples = append(samples, bitvec.FromProto(pb))
	}
	return samples, nil
}

// Serve answers framed sample requests on rw using inner, until rw's read
// side reports that the peer has hung up. Sampling failures are reported to
// the peer in-band rather than tearing down the loop.
func Serve(rw io.ReadWriter, inner Sampler) error {
	for {
		req := new(simonpb.SampleRequest)
		if err := readFrame(rw, req); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return fmt.Errorf("receiving sample request: %w", err)
		}
		batch := new(simonpb.SampleBatch)
		o, err := oracle.FromProto(req.GetOracle())
		if err == nil {
			var samples []bitvec.Dense
			samples, err = inner.Sample(o, int(req.GetShots()))
			for _, s := range samples {
				batch.Samples = append(batch.Samples, s.ToProto())
			}
		}
		if err != nil {
			batch = &simonpb.SampleBatch{Error: err.Error()}
		}
		if err := writeFrame(rw, batch); err != nil {
			return fmt.Errorf("sending sample batch: %w", err)
		}
	}
}

func writeFrame(w io.Writer, m proto.Message) error {
	marshalled, err := proto.Marshal(m)
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(marshalled))); err != nil {
		return err
	}
	_, err = w.Write(marshalled)
	return err
}

func readFrame(r io.Reader, m proto.Message) error {
	var mLen int32
	if err := binary.Read(r, binary.LittleEndian, &mLen); err != nil {
		return err
	}
	marshalled := make([]byte, mLen)
	if _, err := io.ReadFull(r, marshalled); err != nil {
		return err
	}
	return proto.Unmarshal(marshalled, m)
}
