/*
Package cow offers containers with copy-on-write semantics.

Copy-on-write containers can be copied in constant time: a copy shares the
storage of the original, and duplication of the storage is deferred until one
of the copies is modified. Read-only access never duplicates anything.
Contrary to persistent data structures, sharing is all-or-nothing: either two
containers share all of their storage, or none of it.

Sub-package sequence implements an ordered sequence of named values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cow
