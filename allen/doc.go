// Package allen is a client for the private student API behind Allen's
// digital classroom (ddcapi.allenbpms.in).
//
// A Client authenticates once, either with a form number and password or
// with a bearer token obtained earlier, and then exposes one method per
// resource:
//
//	c, err := allen.New(ctx, allen.Credentials{Username: form, Password: pwd})
//	if err != nil {
//		return err
//	}
//	videos, err := c.RecordedVideos(ctx)
//
// Records are plain values. Detail that needs another request, such as the
// playable link of a video or the solutions of a test, is resolved by passing
// a Fetcher (usually the Client itself):
//
//	link, err := videos[0].Link(ctx, c)
//
// Nothing is cached, every call is a round trip.
package allen
