/*
Package dict defines the read-only expression-tree data model a
dictionary hands to the core (§3 of the design): CONNECTOR, AND and OR
nodes, plus the connector descriptor that backs a connector's name for
hashing and matching.

Expression trees are owned by the dictionary; every package downstream
of dict treats them as immutable and read-only, borrowing pointers into
them without copying.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dict
