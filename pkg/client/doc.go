// Package client provides an HTTP client that automatically signs A2G
// envelopes with the agent's AEON identity.
//
// # Usage
//
//	doc, _ := did.Create("my-agent", nil)
//	c := client.NewA2GClient(doc, "https://governance.example.com/a2g", nil)
//
//	if err := c.Register(ctx, []string{"search"}, nil); err != nil {
//	    return err
//	}
//
//	verdict, err := c.SubmitIntent(ctx, "search", map[string]any{"q": "x"})
//	if err != nil {
//	    return err
//	}
//	if verdict.Verdict == protocol.VerdictApproved {
//	    // execute, then report
//	}
//
// Every intent carries a signature over the agent's DID string in its
// context; the governance side authenticates it with the server
// package's middleware. The signing key never leaves the process.
package client
