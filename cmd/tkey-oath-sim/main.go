// tkey-oath-sim wires the device core to simulated hardware and drives
// a short scripted session over it, standing in for the real
// firmware's main() loop and a physical host exchanging frames over a
// serial link.
package main

import (
	"log"

	"github.com/tillitis/tkey-device-oath/internal/hw"
	"github.com/tillitis/tkey-device-oath/pkg/crypto"
	"github.com/tillitis/tkey-device-oath/pkg/dispatcher"
	"github.com/tillitis/tkey-device-oath/pkg/frame"
	"github.com/tillitis/tkey-device-oath/pkg/hostapi"
	"github.com/tillitis/tkey-device-oath/pkg/session"
)

const frameID uint8 = 1

func main() {
	sim := hw.NewDefaultSim()
	cdi, err := sim.Read()
	if err != nil {
		log.Fatalf("reading CDI: %v", err)
	}
	envelope, err := crypto.NewEnvelope(cdi[:])
	if err != nil {
		log.Fatalf("creating envelope: %v", err)
	}

	state := &session.State{}
	state.Reset()
	d := dispatcher.New(state, envelope, sim, sim, sim)

	log.Print("GET_NAMEVERSION")
	send(d, mustFrame(hostapi.SingleFrameRequest(frameID, frame.DstSW, dispatcher.OpGetNameVersion, nil)))

	log.Print("LOAD_TOC (empty)")
	header := emptyTOCHeader()
	for _, f := range mustChunks(hostapi.ChunkRequest(frameID, frame.DstSW, dispatcher.OpLoadTOC, header)) {
		send(d, f)
	}

	log.Print("PUT a TOTP record")
	put, err := hostapi.BuildPutRecord([]byte("12345678901234567890"), 30, true, false, 6, "totp-demo")
	if err != nil {
		log.Fatalf("building put record: %v", err)
	}
	putBytes, _ := put.MarshalBinary()
	var putReply frame.Frame
	for _, f := range mustChunks(hostapi.ChunkRequest(frameID, frame.DstSW, dispatcher.OpPut, putBytes)) {
		putReply = send(d, f)
	}
	if err := hostapi.ParseStatus(putReply, dispatcher.OpPut); err != nil {
		log.Fatalf("PUT failed: %v", err)
	}

	log.Print("PUT_GETRECORD")
	getRecReply := send(d, mustFrame(hostapi.SingleFrameRequest(frameID, frame.DstSW, dispatcher.OpPutGetRecord, nil)))
	secure, err := hostapi.ParsePutGetRecord(getRecReply)
	if err != nil {
		log.Fatalf("PUT_GETRECORD failed: %v", err)
	}

	fp, err := crypto.DeriveDebugFingerprint(cdi[:], putBytes)
	if err != nil {
		log.Fatalf("deriving fingerprint: %v", err)
	}
	log.Printf("record fingerprint: %x", fp)

	log.Print("CALCULATE at time=59 (expect seq 59/30=1)")
	calc := hostapi.BuildCalculate(secure, 59)
	calcBytes, _ := calc.MarshalBinary()
	calcReply := send(d, mustFrame(hostapi.SingleFrameRequest(frameID, frame.DstSW, dispatcher.OpCalculate, calcBytes)))
	result, err := hostapi.ParseCalculate(calcReply)
	if err != nil {
		log.Fatalf("CALCULATE failed: %v", err)
	}
	log.Printf("TOTP value: %06d", result.Value)
}

// emptyTOCHeader builds a decrypted_toc_header with descriptor_count
// 0 — a legal, immediately-successful LOAD_TOC payload.
func emptyTOCHeader() []byte {
	return make([]byte, 1+24+16+1)
}

func send(d *dispatcher.Dispatcher, req frame.Frame) frame.Frame {
	resp, ok := d.HandleFrame(req)
	if !ok {
		log.Fatal("frame silently dropped")
	}
	if resp.Header.Status != frame.StatusOK {
		log.Printf("NOK reply")
	}
	return resp
}

func mustFrame(f frame.Frame, err error) frame.Frame {
	if err != nil {
		log.Fatalf("building frame: %v", err)
	}
	return f
}

func mustChunks(frames []frame.Frame, err error) []frame.Frame {
	if err != nil {
		log.Fatalf("building chunked request: %v", err)
	}
	return frames
}
