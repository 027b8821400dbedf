package application

import (
	"context"
	"fmt"
	"io"

	"downtimed/internal/monitor/domain"
)

// WriteReport prints recorded outages to w, newest first, one per line in
// the same wording the journal uses.
func (s *Service) WriteReport(ctx context.Context, w io.Writer, filters domain.OutageFilters) error {
	outages, err := s.ListOutages(ctx, filters)
	if err != nil {
		return err
	}

	if len(outages) == 0 {
		fmt.Fprintln(w, "no outages recorded")
		return nil
	}

	for _, outage := range outages {
		ended := outage.Ended.Format(domain.TimestampLayout)
		if outage.Started == nil {
			fmt.Fprintf(w, "%s: no prior record\n", ended)
			continue
		}
		fmt.Fprintf(w, "%s: down between %s and %s\n",
			ended, outage.Started.Format(domain.TimestampLayout), ended)
	}

	return nil
}
