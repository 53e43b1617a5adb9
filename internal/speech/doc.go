// Package speech owns the card speech decision: recorded audio when the
// clip exists, synthesized speech as the fallback, with request tokens so
// only the most recent card change is ever heard.
package speech
