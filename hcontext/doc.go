/* Copyright (c) 2018 Salesforce
 * All rights reserved.
 * Licensed under the BSD 3-Clause license.
 * For full license text, see LICENSE.txt file in the repo root  or https://opensource.org/licenses/BSD-3-Clause
 */

// Package hcontext contains helpers for storing request-scoped values,
// such as the inbound request ID, in a context.Context.
package hcontext
