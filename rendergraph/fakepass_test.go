package rendergraph_test

import "github.com/arcrender/vgeo/rendergraph"

type fakePass struct {
	name         string
	passType     rendergraph.PassType
	phase        rendergraph.Phase
	immediate    bool
	compileCalls int
	execCalls    int
	finishCalls  int
	execOrder    *[]string
}

func (p *fakePass) Kind() (rendergraph.PassType, rendergraph.Phase) { return p.passType, p.phase }

func (p *fakePass) Compile(dev rendergraph.Device, cache *rendergraph.ResourceCache) error {
	p.compileCalls++
	return nil
}

func (p *fakePass) Execute(cmdList *rendergraph.CommandList, cache *rendergraph.ResourceCache) error {
	p.execCalls++
	if p.execOrder != nil {
		*p.execOrder = append(*p.execOrder, p.name)
	}
	return nil
}

func (p *fakePass) FinishPass(cache *rendergraph.ResourceCache) error {
	p.finishCalls++
	return nil
}

func (p *fakePass) Immediate() bool { return p.immediate }
