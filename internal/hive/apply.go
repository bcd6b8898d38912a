package hive

import "github.com/google/uuid"

// Apply 校验并执行一个动作。校验全部通过才落地修改；
// 失败时记录原样不动，返回规则错误。成功后检查胜负、换边、回合 +1。
func (g *Game) Apply(act Action) error {
	if g.Status == StatusFinished {
		return ErrGameFinished
	}

	if err := g.validateTurn(act); err != nil {
		return err
	}

	var err error
	switch act.Kind {
	case ActionPlace:
		err = g.executePlace(act)
	case ActionMove:
		err = g.executeMove(act)
	case ActionSpecial:
		err = g.executeSpecial(act)
	default:
		err = ruleErr("unknown action kind")
	}
	if err != nil {
		return err
	}

	g.History = append(g.History, MoveLog{Action: act, Player: g.CurrentTurn, Turn: g.TurnNumber})
	to := act.To
	g.LastMoved = &to

	g.checkWin()

	// 换边 + 增量更新走子方哈希项
	g.hash ^= g.zob.TurnKey(g.CurrentTurn)
	g.CurrentTurn = Opposite(g.CurrentTurn)
	g.hash ^= g.zob.TurnKey(g.CurrentTurn)
	g.TurnNumber++

	return nil
}

// 蜂后未落不能走子；第 4 次落子回合蜂后还在手里就只能放蜂后
func (g *Game) validateTurn(act Action) error {
	hand := g.Hands[g.CurrentTurn]
	switch act.Kind {
	case ActionMove, ActionSpecial:
		if !hand.QueenPlaced() {
			return ruleErr("must place queen bee before moving pieces")
		}
	case ActionPlace:
		if g.isFourthPlacementTurn(g.CurrentTurn) && !hand.QueenPlaced() && act.PieceType != PieceQueen {
			return ruleErr("rules require placing queen bee by the 4th turn")
		}
	}
	return nil
}

func (g *Game) executePlace(act Action) error {
	if act.PieceType == PieceNone {
		return ruleErr("piece type required for placement")
	}

	color := g.CurrentTurn
	hand := g.Hands[color]
	if hand[act.PieceType] <= 0 {
		return ruleErr("no " + act.PieceType.String() + " remaining in hand")
	}

	if len(g.Board[act.To]) > 0 {
		return ruleErr("cannot place on occupied tile")
	}

	// 落子位置规则
	if len(g.Board) == 0 {
		// 第一手固定原点，棋盘坐标以此为锚
		if act.To != (Coord{}) {
			return ruleErr("first piece must be placed at the origin")
		}
	} else if g.TurnNumber == 2 {
		hasNeighbor := false
		for _, n := range Neighbors(act.To) {
			if len(g.Board[n]) > 0 {
				hasNeighbor = true
				break
			}
		}
		if !hasNeighbor {
			return ruleErr("must place next to existing hive")
		}
	} else {
		touchingOwn := false
		touchingOpponent := false
		for _, n := range Neighbors(act.To) {
			if p, ok := g.TopPiece(n); ok {
				if p.Color == color {
					touchingOwn = true
				} else {
					touchingOpponent = true
				}
			}
		}
		if !touchingOwn {
			return ruleErr("new placements must touch your own color")
		}
		if touchingOpponent {
			return ruleErr("new placements cannot touch opponent pieces")
		}
	}

	piece := Piece{Type: act.PieceType, Color: color, ID: uuid.NewString()}
	g.Board[act.To] = []Piece{piece}

	oldCount := hand[act.PieceType]
	hand[act.PieceType] = oldCount - 1

	g.hash ^= g.zob.HandKey(act.PieceType, color, oldCount)
	g.hash ^= g.zob.HandKey(act.PieceType, color, oldCount-1)
	g.hash ^= g.zob.PieceKey(act.To, piece.Type, piece.Color, 0)

	return nil
}

func (g *Game) executeMove(act Action) error {
	if !act.HasFrom {
		return ruleErr("origin required for move")
	}

	piece, ok := g.TopPiece(act.From)
	if !ok {
		return ruleErr("no piece at origin")
	}
	if piece.Color != g.CurrentTurn {
		return ruleErr("cannot move opponent's piece")
	}
	if g.frozenAt(act.From) {
		return ruleErr("piece is frozen by a pillbug throw")
	}

	// One Hive：先虚拟提起检查，再虚拟落地检查
	occupied := g.Occupied()
	future := occupied.Clone()
	if g.StackHeight(act.From) == 1 {
		future.Remove(act.From)
	}
	if !IsConnected(future) {
		return ruleErr("move violates one hive rule (disconnects hive)")
	}
	future.Add(act.To)
	if !IsConnected(future) {
		return ruleErr("move violates one hive rule (destination disconnected)")
	}

	if act.From == act.To {
		return ruleErr("cannot move to same position")
	}

	// 生成器就是校验器：落点必须在该棋子的合法落点集里
	if !DestinationsFor(g, act.From, g.CurrentTurn).Has(act.To) {
		return ruleErr("invalid move for " + piece.Type.String())
	}

	g.liftAndDrop(act.From, act.To)
	return nil
}

func (g *Game) executeSpecial(act Action) error {
	if !act.HasFrom {
		return ruleErr("origin required for special move")
	}

	victim, ok := g.TopPiece(act.From)
	if !ok {
		return ruleErr("no piece at origin")
	}

	// 找一只能完成这次投掷的己方鼠妇
	found := false
	for c := range g.Board {
		p, ok := g.TopPiece(c)
		if !ok || p.Color != g.CurrentTurn || p.Type != PiecePillbug {
			continue
		}
		for _, t := range ThrowsFor(g, c, g.CurrentTurn) {
			if t.From == act.From && t.To == act.To {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return ruleErr("no pillbug can perform this throw for " + victim.Type.String())
	}

	g.liftAndDrop(act.From, act.To)

	// 被投掷的棋子冻结到投掷方的下一回合结束
	to := act.To
	g.Frozen = &to
	g.FrozenUntil = g.TurnNumber + 2
	return nil
}

// liftAndDrop 把 from 顶端的棋子挪到 to 顶端，同步增量哈希。
func (g *Game) liftAndDrop(from, to Coord) {
	stack := g.Board[from]
	piece := stack[len(stack)-1]
	fromLevel := len(stack) - 1

	g.Board[from] = stack[:len(stack)-1]
	if len(g.Board[from]) == 0 {
		delete(g.Board, from)
	}

	toLevel := len(g.Board[to])
	g.Board[to] = append(g.Board[to], piece)

	g.hash ^= g.zob.PieceKey(from, piece.Type, piece.Color, fromLevel)
	g.hash ^= g.zob.PieceKey(to, piece.Type, piece.Color, toLevel)
}
