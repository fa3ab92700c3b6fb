package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/kartiknair/lir/ir"
	"github.com/kartiknair/lir/types"
	"github.com/urfave/cli/v2"
)

func must(err error) {
	if err != nil {
		log.Fatalf("Failed while building the sample module.\n%s", err.Error())
	}
}

func mustCall(b *ir.Block, callee ir.Value, args ...ir.Value) *ir.InstCall {
	call, err := b.NewCall(callee, args...)
	must(err)
	return call
}

// qubit and result render the QIR pointer literals, e.g.
// `%Qubit* inttoptr (i64 0 to %Qubit*)`.
func qubit(t *types.StructType, id int64) ir.Constant {
	return ir.NewIntToPtr(ir.NewInt(types.I64, id), types.NewPointer(t))
}

// buildSample builds a Bell-pair entry point in the base QIR profile:
// H on qubit 0, CNOT 0->1, measure both, record the outputs.
func buildSample() *ir.Module {
	m := ir.NewModule("qirgen-sample")

	qubitTy, err := m.NewOpaqueType("Qubit")
	must(err)
	resultTy, err := m.NewOpaqueType("Result")
	must(err)
	qubitPtr := types.NewPointer(qubitTy)
	resultPtr := types.NewPointer(resultTy)

	h, err := m.NewFunc("__quantum__qis__h__body", types.Void, ir.NewParam("", qubitPtr))
	must(err)
	cx, err := m.NewFunc("__quantum__qis__cx__body", types.Void,
		ir.NewParam("", qubitPtr), ir.NewParam("", qubitPtr))
	must(err)
	mzParam := ir.NewParam("", resultPtr)
	mzParam.Attrs = []string{"writeonly"}
	mz, err := m.NewFunc("__quantum__qis__mz__body", types.Void,
		ir.NewParam("", qubitPtr), mzParam)
	must(err)
	mz.Attrs = []string{"irreversible"}
	record, err := m.NewFunc("__quantum__rt__result_record_output", types.Void,
		ir.NewParam("", resultPtr), ir.NewParam("", types.I8Ptr))
	must(err)

	ep, err := m.NewFunc("ENTRYPOINT__main", types.Void)
	must(err)
	ep.Attrs = []string{"entry_point", "qir_profiles=base_profile", "required_num_qubits=2", "required_num_results=2"}

	entry := ep.NewBlock("entry")
	q0 := qubit(qubitTy, 0)
	q1 := qubit(qubitTy, 1)
	r0 := ir.NewIntToPtr(ir.NewInt(types.I64, 0), resultPtr)
	r1 := ir.NewIntToPtr(ir.NewInt(types.I64, 1), resultPtr)

	mustCall(entry, h, q0)
	mustCall(entry, cx, q0, q1)
	measure0 := mustCall(entry, mz, q0, r0)
	measure0.Attrs = []string{"irreversible"}
	measure1 := mustCall(entry, mz, q1, r1)
	measure1.Attrs = []string{"irreversible"}
	mustCall(entry, record, r0, ir.NewNull(types.I8Ptr))
	mustCall(entry, record, r1, ir.NewNull(types.I8Ptr))
	must(entry.NewRet(nil))

	must(m.Finish())
	return m
}

func emit(outputFile string) {
	m := buildSample()

	if outputFile == "" {
		fmt.Print(m.String())
		return
	}
	if err := ioutil.WriteFile(outputFile, []byte(m.String()), 0o644); err != nil {
		log.Fatalf("Failed while writing output file.\n%s", err.Error())
	}
}

func main() {
	var outputFile string

	app := &cli.App{
		Name:  "qirgen",
		Usage: "Emits a sample QIR module built with the lir builder API.",
		Commands: []*cli.Command{
			{
				Name:  "emit",
				Usage: "Builds the sample module and writes its textual IR.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "output",
						Aliases:     []string{"o"},
						Usage:       "File to write the .ll text to (defaults to stdout).",
						Destination: &outputFile,
					},
				},
				Action: func(c *cli.Context) error {
					emit(outputFile)
					return nil
				},
			},
			{
				Name:  "dump",
				Usage: "Prints the in-memory structure of the sample module.",
				Action: func(c *cli.Context) error {
					repr.Println(buildSample())
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
