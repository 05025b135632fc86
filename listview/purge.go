package listview

import (
	"context"
	"fmt"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-console/core"
)

// Purge is the bulk product delete, gated on an explicit confirmation
// flag. Without it the request never reaches the network.
type Purge struct {
	Client core.ProductClient
	Sink   core.AlertSink
	Logger core.Logger
}

func NewPurge(client core.ProductClient, sink core.AlertSink) *Purge {
	_, logger := glog.Resolve("listview.purge", nil, nil)
	return &Purge{Client: client, Sink: sink, Logger: logger}
}

// Run deletes every product when confirmed. An unconfirmed run only
// raises a warning; a confirmed run reports the server's deletion count
// or the failure message.
func (p *Purge) Run(ctx context.Context, confirmed bool) error {
	if p == nil || p.Client == nil || p.Sink == nil {
		return bindingError("listview: purge requires a client and a sink")
	}
	if !confirmed {
		p.Sink.Alert("Please confirm before deleting.", core.AlertWarning)
		return nil
	}

	deleted, err := p.Client.DeleteAllProducts(ctx)
	if err != nil {
		if p.Logger != nil {
			p.Logger.Error("bulk delete failed", "error", err)
		}
		p.Sink.Alert(core.DisplayMessage(err), core.AlertError)
		return err
	}
	p.Sink.Alert(fmt.Sprintf("Deleted %d products.", deleted), core.AlertInfo)
	return nil
}
