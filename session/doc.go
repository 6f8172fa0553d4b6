// Package session configures process-wide audio output before the render
// graph is built: it locates the default output device, checks that it can
// carry multichannel/spatial content and verifies it is alive. Every step is
// best-effort; failures are reported to the error handler and configuration
// continues degraded (audio may play without spatialization) rather than
// aborting.
package session
