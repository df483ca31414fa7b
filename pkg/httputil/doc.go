// Package httputil provides HTTP utilities for outbound API clients.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Only errors wrapped in [RetryableError] trigger another attempt, so
// callers decide which failures are transient:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    if resp.StatusCode >= 500 || resp.StatusCode == 429 {
//	        return &httputil.RetryableError{Err: fmt.Errorf("status %d", resp.StatusCode)}
//	    }
//	    // ... consume response ...
//	    return nil
//	})
//
// The backoff is exponential starting at the given delay, and the loop
// honors context cancellation between attempts.
package httputil
