/* Copyright (c) 2018 Salesforce
 * All rights reserved.
 * Licensed under the BSD 3-Clause license.
 * For full license text, see LICENSE.txt file in the repo root  or https://opensource.org/licenses/BSD-3-Clause
 */

// Package hmiddleware contains various little bits of useful Chi style
// (function that takes and returns a HTTP handler) middleware meant to
// accompany the httpmetrics instrumentation: request ID propagation,
// request logging, and panic recovery.
package hmiddleware
