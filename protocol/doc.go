package protocol

// This package implements parsing and rendering of the line protocol that
// seymour clients and servers speak.
//
// This protocol aims to be
//
// - easy to implement
// - human readable, a session can be driven by hand over telnet
// - strict, a line either parses into exactly one message or is rejected
//
// - `Command` - A client instruction to a seymour server.
// - `Response` - A line sent by the server, either a reply to a command or
//                one item of a list the server is streaming.
//
// === General Syntax
//
// - one message per line, the line terminator belongs to the transport and
//   is never part of what ParseCommand/ParseResponse see or String produces
// - fields are separated by a single space, spaces are never collapsed
// - commands start with an upper case verb, responses start with a two
//   digit code
// - integers are signed 64 bit decimals
//
// === Session
//
//  ```
//    > USER <username>
//    < 20 <user_id>
//    > LISTSUBSCRIPTIONS
//    < 21
//    < 22 <feed_id> <feed_url>
//    < 25
//    > SUBSCRIBE <feed_url>
//    < 26
//    > UNSUBSCRIBE <feed_id>
//    < 27
//    > LISTUNREAD
//    < 23
//    < 24 <entry_id> <feed_id> <feed_url> <entry_url> :<entry_title>
//    < 25
//    > MARKREAD <entry_id>
//    < 28
//  ```
//
// Every command but USER requires a user to have been selected. That is
// enforced by the server, the codec has no session state.
//
// === Error responses
//
//  ```
//    < 40 <message>   resource not found
//    < 41 <message>   bad command
//    < 42 <message>   need user
//    < 50 <message>   internal error
//  ```
//
// Where `<message>` is a human readable string that runs to the end of the
// line. A server that can't parse a command replies with BadCommandFrom(err).
//
// === Entry titles
//
// The title of an entry is the only free text field that isn't at the end
// of an error response. It is introduced by a token starting with ':' and
// runs to the end of the line. Titles are not escaped, a title containing a
// line break can't be sent.
