// Package notify deduplicates discovered documents against a persistent
// URL ledger and renders grouped French notification reports.
//
// The canonical sequence for a run is:
//
//	ledger := notify.LoadLedger(path)
//	fresh := ledger.FilterNew(enriched)
//	body := notify.Render(time.Now(), fresh)
//	notify.WriteArtifact(outDir, time.Now(), body)
//	ledger.Commit(fresh)
//	transport.Send(ctx, subject, body)
//
// The ledger is committed before the transport fires: a delivery failure
// never un-records a URL, so a document is notified at most once even
// when delivery is lossy.
package notify
